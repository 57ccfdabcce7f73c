package pagexml

import "encoding/xml"

// XML namespaces used in PAGE documents. Struct tags match on local element
// names so that every published revision of the PAGE schema is accepted; the
// canonical namespace is recorded here for reference and for test fixtures.
const (
	NSPage2013 = "http://schema.primaresearch.org/PAGE/gts/pagecontent/2013-07-15"
	NSPage2017 = "http://schema.primaresearch.org/PAGE/gts/pagecontent/2017-07-15"
	NSPage2019 = "http://schema.primaresearch.org/PAGE/gts/pagecontent/2019-07-15"
)

// pcGtsXML represents the PcGts root element of a PAGE document.
type pcGtsXML struct {
	XMLName  xml.Name     `xml:"PcGts"`
	Metadata *metadataXML `xml:"Metadata"`
	Pages    []pageXML    `xml:"Page"`
}

// metadataXML represents the <Metadata> element.
type metadataXML struct {
	Creator    string `xml:"Creator"`
	Created    string `xml:"Created"`
	LastChange string `xml:"LastChange"`
}

// pageXML represents a <Page> element.
type pageXML struct {
	ImageFilename string          `xml:"imageFilename,attr"`
	ImageWidth    string          `xml:"imageWidth,attr"`
	ImageHeight   string          `xml:"imageHeight,attr"`
	Regions       []textRegionXML `xml:"TextRegion"`
	Lines         []textLineXML   `xml:"TextLine"`
}

// textRegionXML represents a <TextRegion> element. Regions may nest, so the
// type is recursive.
type textRegionXML struct {
	ID        string          `xml:"id,attr"`
	Regions   []textRegionXML `xml:"TextRegion"`
	Lines     []textLineXML   `xml:"TextLine"`
	TextEquiv []textEquivXML  `xml:"TextEquiv"`
}

// textLineXML represents a <TextLine> element.
type textLineXML struct {
	ID        string         `xml:"id,attr"`
	Words     []wordXML      `xml:"Word"`
	TextEquiv []textEquivXML `xml:"TextEquiv"`
}

// wordXML represents a <Word> element within a text line.
type wordXML struct {
	ID        string         `xml:"id,attr"`
	TextEquiv []textEquivXML `xml:"TextEquiv"`
}

// textEquivXML represents a <TextEquiv> element carrying transcription text.
type textEquivXML struct {
	Unicode []unicodeXML `xml:"Unicode"`
}

// unicodeXML represents a <Unicode> element.
type unicodeXML struct {
	Value string `xml:",chardata"`
}
