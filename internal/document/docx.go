package document

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/awarelabs/aware/pkg/models"
)

// OOXML structures for word/document.xml. Only the parts the analysis needs
// are mapped; namespaces are matched by local name.
type xmlDoc struct {
	Body struct {
		Paragraphs []xmlParagraph `xml:"p"`
	} `xml:"body"`
}

type xmlParagraph struct {
	Props *xmlParaProps `xml:"pPr"`
	Runs  []xmlRun      `xml:"r"`
	Ins   []xmlTracked  `xml:"ins"`
	Del   []xmlTracked  `xml:"del"`
}

type xmlParaProps struct {
	Style *struct {
		Val string `xml:"val,attr"`
	} `xml:"pStyle"`
	NumPr *struct {
		NumID *struct {
			Val string `xml:"val,attr"`
		} `xml:"numId"`
	} `xml:"numPr"`
	Spacing *struct {
		Before string `xml:"before,attr"`
		After  string `xml:"after,attr"`
	} `xml:"spacing"`
}

type xmlRun struct {
	Props   *xmlRunProps `xml:"rPr"`
	Text    []string     `xml:"t"`
	DelText []string     `xml:"delText"`
}

type xmlRunProps struct {
	Fonts *struct {
		ASCII string `xml:"ascii,attr"`
	} `xml:"rFonts"`
	Size *struct {
		Val string `xml:"val,attr"`
	} `xml:"sz"`
}

type xmlTracked struct {
	Runs []xmlRun `xml:"r"`
}

// ParseDOCX builds DocumentFeatures from DOCX file content, including
// track changes, font and style summaries, and core/app metadata.
func ParseDOCX(data []byte, filename string) (*models.DocumentFeatures, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("open docx: %w", err)
	}

	docXML, err := readZipFile(zr, "word/document.xml")
	if err != nil {
		return nil, fmt.Errorf("read document body: %w", err)
	}

	var doc xmlDoc
	if err := xml.Unmarshal(docXML, &doc); err != nil {
		return nil, fmt.Errorf("parse document body: %w", err)
	}

	paragraphs := make([]string, 0, len(doc.Body.Paragraphs))
	var trackChanges []models.TrackChange
	var runFonts []string

	headingStyles := map[string]bool{}
	listStyles := map[string]bool{}
	spacingValues := map[float64]bool{}

	for idx, para := range doc.Body.Paragraphs {
		var sb strings.Builder
		for _, run := range para.Runs {
			for _, t := range run.Text {
				sb.WriteString(t)
			}
			if key := fontKey(run.Props); key != "" {
				runFonts = append(runFonts, key)
			}
		}
		paragraphs = append(paragraphs, sb.String())

		for _, ins := range para.Ins {
			trackChanges = append(trackChanges, trackChange(models.EditInsertion, ins, idx))
		}
		for _, del := range para.Del {
			trackChanges = append(trackChanges, trackChange(models.EditDeletion, del, idx))
		}

		if para.Props == nil {
			continue
		}
		if para.Props.Style != nil && strings.HasPrefix(strings.ToLower(para.Props.Style.Val), "heading") {
			headingStyles[para.Props.Style.Val] = true
		}
		if para.Props.NumPr != nil && para.Props.NumPr.NumID != nil {
			listStyles[para.Props.NumPr.NumID.Val] = true
		}
		if para.Props.Spacing != nil {
			if pt, ok := twipsToPoints(para.Props.Spacing.Before); ok {
				spacingValues[pt] = true
			}
			if pt, ok := twipsToPoints(para.Props.Spacing.After); ok {
				spacingValues[pt] = true
			}
		}
	}

	features := &models.DocumentFeatures{
		Filename:     filename,
		Text:         strings.TrimSpace(strings.Join(paragraphs, "\n")),
		Paragraphs:   paragraphs,
		TrackChanges: trackChanges,
		FontInfo:     summarizeFonts(runFonts),
		StyleInfo: models.StyleInfo{
			HeadingStyles: sortedKeys(headingStyles),
			ListStyles:    sortedKeys(listStyles),
			SpacingValues: sortedFloats(spacingValues),
		},
		FileType: "docx",
	}

	if core, err := readZipFile(zr, "docProps/core.xml"); err == nil {
		parseCoreProps(core, &features.Metadata)
	}
	if app, err := readZipFile(zr, "docProps/app.xml"); err == nil {
		parseAppProps(app, &features.Metadata)
	}

	return features, nil
}

func trackChange(kind string, tracked xmlTracked, paragraphIndex int) models.TrackChange {
	var sb strings.Builder
	for _, run := range tracked.Runs {
		for _, t := range run.Text {
			sb.WriteString(t)
		}
		for _, t := range run.DelText {
			sb.WriteString(t)
		}
	}
	text := sb.String()
	return models.TrackChange{
		Type:           kind,
		WordCount:      CountWords(text),
		ParagraphIndex: paragraphIndex,
		Text:           text,
	}
}

func fontKey(props *xmlRunProps) string {
	if props == nil {
		return ""
	}
	name := "unknown"
	size := "0"
	if props.Fonts != nil && props.Fonts.ASCII != "" {
		name = props.Fonts.ASCII
	}
	if props.Size != nil && props.Size.Val != "" {
		size = props.Size.Val
	}
	if name == "unknown" && size == "0" {
		return ""
	}
	return name + "/" + size
}

// summarizeFonts counts consecutive clusters of runs whose font differs
// from the dominant font of the document.
func summarizeFonts(runFonts []string) models.FontInfo {
	if len(runFonts) == 0 {
		return models.FontInfo{}
	}

	counts := make(map[string]int)
	for _, key := range runFonts {
		counts[key]++
	}

	dominant := runFonts[0]
	for key, n := range counts {
		if n > counts[dominant] || (n == counts[dominant] && key < dominant) {
			dominant = key
		}
	}

	clusters := 0
	inCluster := false
	for _, key := range runFonts {
		if key != dominant {
			if !inCluster {
				clusters++
				inCluster = true
			}
		} else {
			inCluster = false
		}
	}

	return models.FontInfo{
		Clusters:   clusters,
		Dominant:   dominant,
		FontCounts: counts,
	}
}

type xmlCoreProps struct {
	Created  string `xml:"created"`
	Modified string `xml:"modified"`
	Revision string `xml:"revision"`
}

func parseCoreProps(data []byte, meta *models.DocumentMetadata) {
	var props xmlCoreProps
	if err := xml.Unmarshal(data, &props); err != nil {
		return
	}
	if t, ok := parseISOTime(props.Created); ok {
		meta.Created = &t
	}
	if t, ok := parseISOTime(props.Modified); ok {
		meta.Modified = &t
	}
	if rev, err := strconv.Atoi(strings.TrimSpace(props.Revision)); err == nil {
		meta.Revision = &rev
	}
}

type xmlAppProps struct {
	TotalTime string `xml:"TotalTime"`
}

func parseAppProps(data []byte, meta *models.DocumentMetadata) {
	var props xmlAppProps
	if err := xml.Unmarshal(data, &props); err != nil {
		return
	}
	if minutes, err := strconv.Atoi(strings.TrimSpace(props.TotalTime)); err == nil {
		meta.EditingMinutes = &minutes
	}
}

func parseISOTime(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// twipsToPoints converts OOXML twentieths-of-a-point spacing values.
func twipsToPoints(value string) (float64, bool) {
	if value == "" {
		return 0, false
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, false
	}
	return float64(n) / 20.0, true
}

func readZipFile(zr *zip.Reader, name string) ([]byte, error) {
	for _, f := range zr.File {
		if f.Name != name {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, err
		}
		defer rc.Close()
		return io.ReadAll(rc)
	}
	return nil, fmt.Errorf("%s not found in archive", name)
}

func sortedKeys(set map[string]bool) []string {
	if len(set) == 0 {
		return nil
	}
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sortedFloats(set map[float64]bool) []float64 {
	if len(set) == 0 {
		return nil
	}
	values := make([]float64, 0, len(set))
	for v := range set {
		values = append(values, v)
	}
	sort.Float64s(values)
	return values
}
