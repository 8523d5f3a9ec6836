package src

import "encoding/xml"

// XMLTV : Guide feed document
type XMLTV struct {
	Generator string   `xml:"generator-info-name,attr"`
	Source    string   `xml:"source-info-name,attr"`
	XMLName   xml.Name `xml:"tv"`

	Channel []*Channel `xml:"channel"`
	Program []*Program `xml:"programme"`
}

// Channel : Feed channel definition
type Channel struct {
	ID          string        `xml:"id,attr"`
	DisplayName []DisplayName `xml:"display-name"`
	Icon        Icon          `xml:"icon"`
}

// DisplayName : Channel Name
type DisplayName struct {
	Value string `xml:",chardata"`
}

// Icon : Channel Logo
type Icon struct {
	Src string `xml:"src,attr"`
}

// Program : Programme entry
type Program struct {
	Channel string `xml:"channel,attr"`
	Start   string `xml:"start,attr"`
	Stop    string `xml:"stop,attr"`

	Title      []*Title      `xml:"title"`
	SubTitle   []*SubTitle   `xml:"sub-title"`
	Desc       []*Desc       `xml:"desc"`
	Category   []*Category   `xml:"category"`
	EpisodeNum []*EpisodeNum `xml:"episode-num"`
	Poster     []Poster      `xml:"icon"`
	Rating     []Rating      `xml:"rating"`
}

// Title : Programme Title
type Title struct {
	Lang  string `xml:"lang,attr"`
	Value string `xml:",chardata"`
}

// SubTitle : Short Description
type SubTitle struct {
	Lang  string `xml:"lang,attr"`
	Value string `xml:",chardata"`
}

// Desc : Programme Description
type Desc struct {
	Lang  string `xml:"lang,attr"`
	Value string `xml:",chardata"`
}

// Category
type Category struct {
	Lang  string `xml:"lang,attr"`
	Value string `xml:",chardata"`
}

// Rating
type Rating struct {
	System string `xml:"system,attr"`
	Value  string `xml:"value"`
}

// EpisodeNum
type EpisodeNum struct {
	System string `xml:"system,attr"`
	Value  string `xml:",chardata"`
}

// Poster / Cover
type Poster struct {
	Height string `xml:"height,attr"`
	Src    string `xml:"src,attr"`
	Width  string `xml:"width,attr"`
}
