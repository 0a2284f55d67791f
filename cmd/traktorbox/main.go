// Command traktorbox converts a rekordbox USB export into a Traktor-
// compatible library in place.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path"

	"github.com/pkg/errors"

	"github.com/traktorbox/traktorbox"
	"github.com/traktorbox/traktorbox/fsio"
)

func main() {
	flag.Parse()
	args := flag.Args()
	if len(args) != 1 {
		log.Fatal("usage: traktorbox <usb-path>")
	}
	if err := run(args[0]); err != nil {
		log.Fatalf("%+v", err)
	}
}

func run(usbPath string) error {
	if _, err := os.Stat(usbPath); err != nil {
		return errors.Wrapf(err, "usb path %q", usbPath)
	}
	pdbPath := path.Join(usbPath, "PIONEER", "rekordbox", "export.pdb")
	if _, err := os.Stat(pdbPath); err != nil {
		return errors.Wrapf(err, "missing %s", pdbPath)
	}

	res, err := traktorbox.Convert(fsio.OS, usbPath, traktorbox.Options{})
	if err != nil {
		return err
	}
	for _, w := range res.Warnings {
		fmt.Fprintln(os.Stderr, "warning:", w)
	}
	fmt.Fprintf(os.Stderr, "%d tracks, %d playlists exported\n", res.TrackCount, res.PlaylistCount)
	return nil
}
