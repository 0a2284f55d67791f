package nml

import (
	"encoding/xml"
	"fmt"
)

// header is written verbatim ahead of the marshaled document: Traktor's own
// exporter mixes quote styles between the two pseudo-attributes, so this is
// not reproducible via encoding/xml's own declaration writer.
const header = `<?xml version="1.0" encoding='utf-8'?>` + "\n"

// fixedFloat marshals as a fixed six-decimal-place string, matching every
// floating-point attribute Traktor's NML format uses.
type fixedFloat float64

func (f fixedFloat) MarshalXMLAttr(name xml.Name) (xml.Attr, error) {
	return xml.Attr{Name: name, Value: fmt.Sprintf("%.6f", float64(f))}, nil
}

// optInt is an integer attribute that is omitted entirely when unset,
// rather than rendered as "0".
type optInt struct {
	set bool
	v   int
}

func setInt(v int) optInt { return optInt{set: true, v: v} }

func (o optInt) MarshalXMLAttr(name xml.Name) (xml.Attr, error) {
	if !o.set {
		return xml.Attr{}, nil
	}
	return xml.Attr{Name: name, Value: fmt.Sprintf("%d", o.v)}, nil
}

type document struct {
	XMLName    xml.Name   `xml:"NML"`
	Version    string     `xml:"VERSION,attr"`
	Head       head       `xml:"HEAD"`
	Collection collection `xml:"COLLECTION"`
	Sets       sets       `xml:"SETS"`
	Playlists  playlists  `xml:"PLAYLISTS"`
	Indexing   indexing   `xml:"INDEXING"`
}

type head struct {
	Company string `xml:"COMPANY,attr"`
	Program string `xml:"PROGRAM,attr"`
}

type sets struct {
	Entries int `xml:"ENTRIES,attr"`
}

type indexing struct{}

type collection struct {
	Entries int     `xml:"ENTRIES,attr"`
	Entry   []entry `xml:"ENTRY"`
}

type entry struct {
	ModifiedDate string `xml:"MODIFIED_DATE,attr"`
	ModifiedTime int    `xml:"MODIFIED_TIME,attr"`
	Title        string `xml:"TITLE,attr"`
	Artist       string `xml:"ARTIST,attr"`

	Location   location `xml:"LOCATION"`
	Album      album    `xml:"ALBUM"`
	Info       info     `xml:"INFO"`
	Tempo      tempo    `xml:"TEMPO"`
	AutoGrid   *cueV2   `xml:"CUE_V2,omitempty"`
	MemoryCues []cueV2  `xml:",any"` // ",any" avoids a tag clash with AutoGrid; cueV2's XMLName supplies CUE_V2
}

type location struct {
	Dir      string `xml:"DIR,attr"`
	File     string `xml:"FILE,attr"`
	Volume   string `xml:"VOLUME,attr"`
	VolumeID string `xml:"VOLUMEID,attr"`
}

type album struct {
	Track int    `xml:"TRACK,attr"`
	Title string `xml:"TITLE,attr"`
}

type info struct {
	Genre       string     `xml:"GENRE,attr"`
	Comment     string     `xml:"COMMENT,attr"`
	PlayCount   int        `xml:"PLAYCOUNT,attr"`
	Label       string     `xml:"LABEL,attr"`
	Key         string     `xml:"KEY,attr"`
	PlayTime    int        `xml:"PLAYTIME,attr"`
	PlayTimeF   fixedFloat `xml:"PLAYTIME_FLOAT,attr"`
	ImportDate  string     `xml:"IMPORT_DATE,attr"`
	ReleaseDate string     `xml:"RELEASE_DATE,attr"`
	Color       optInt     `xml:"COLOR,attr"`
	FileSize    optInt     `xml:"FILESIZE,attr"`
	Bitrate     optInt     `xml:"BITRATE,attr"`
	Ranking     optInt     `xml:"RANKING,attr"`
}

type tempo struct {
	BPM        fixedFloat `xml:"BPM,attr"`
	BPMQuality string     `xml:"BPM_QUALITY,attr"`
}

type cueV2 struct {
	XMLName    xml.Name   `xml:"CUE_V2"`
	Name       string     `xml:"NAME,attr"`
	DisplOrder string     `xml:"DISPL_ORDER,attr"`
	Type       string     `xml:"TYPE,attr"`
	Len        fixedFloat `xml:"LEN,attr"`
	Repeats    string     `xml:"REPEATS,attr"`
	Hotcue     int        `xml:"HOTCUE,attr"`
	Start      fixedFloat `xml:"START,attr"`
	Grid       *grid      `xml:"GRID,omitempty"`
}

type grid struct {
	BPM fixedFloat `xml:"BPM,attr"`
}

type playlists struct {
	Root node `xml:"NODE"`
}

type node struct {
	Type     string    `xml:"TYPE,attr"`
	Name     string    `xml:"NAME,attr"`
	Subnodes *subnodes `xml:"SUBNODES,omitempty"`
	Playlist *plist    `xml:"PLAYLIST,omitempty"`
}

type subnodes struct {
	Count int    `xml:"COUNT,attr"`
	Node  []node `xml:"NODE"`
}

type plist struct {
	Entries int       `xml:"ENTRIES,attr"`
	Type    string    `xml:"TYPE,attr"`
	UUID    string    `xml:"UUID,attr"`
	Entry   []plEntry `xml:"ENTRY"`
}

type plEntry struct {
	PrimaryKey primaryKey `xml:"PRIMARYKEY"`
}

type primaryKey struct {
	Type string `xml:"TYPE,attr"`
	Key  string `xml:"KEY,attr"`
}
