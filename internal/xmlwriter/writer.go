// =============================================================================
// ASC to VCI Converter - XML Writer Module
// =============================================================================
//
// This module serializes a merged container registry into the VCI XML
// document the terminal operating system imports.
//
// XML STRUCTURE:
//   The generated XML follows this nesting pattern:
//
//   <vcidata>                            <!-- Root element -->
//     <containers>
//       <container>                      <!-- One per container, sorted -->
//         <pod>KRPUS</pod>
//         <pol>CNSHA</pol>
//         <grossweight>21500</grossweight>
//         ...
//         <stowposition>010482</stowposition>
//       </container>
//     </containers>
//   </vcidata>
//
// The container elements appear in ascending container-number order and each
// carries a fixed field list in fixed order, so identical input yields
// byte-identical output.
//
// =============================================================================

package xmlwriter

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/ginjaninja78/ASC-to-VCI-conversion/internal/ascparser"
	"github.com/ginjaninja78/ASC-to-VCI-conversion/internal/typemap"
	"github.com/ginjaninja78/ASC-to-VCI-conversion/internal/types"
)

// =============================================================================
// XML GENERATION OPTIONS
// =============================================================================

// GenerateOptions contains options for XML generation.
type GenerateOptions struct {
	// Indent is the string used for indentation.
	// Default: "  " (two spaces)
	Indent string

	// IncludeXMLDeclaration determines whether to include the XML declaration.
	// Default: true
	IncludeXMLDeclaration bool

	// XMLVersion is the XML version for the declaration.
	// Default: "1.0"
	XMLVersion string

	// Encoding is the encoding for the XML declaration.
	// Default: "UTF-8"
	Encoding string
}

// DefaultGenerateOptions returns the default generation options.
func DefaultGenerateOptions() GenerateOptions {
	return GenerateOptions{
		Indent:                "  ",
		IncludeXMLDeclaration: true,
		XMLVersion:            "1.0",
		Encoding:              "UTF-8",
	}
}

// CuratedFlags names the containers whose dangerous-goods or out-of-gauge
// status was confirmed outside the manifest. Membership only ever upgrades
// the corresponding flag to 1; a parsed 1 is never downgraded.
type CuratedFlags struct {
	DG  map[types.ContainerNumber]bool
	OOG map[types.ContainerNumber]bool
}

// CuratedFromLists builds CuratedFlags from per-origin container lists.
func CuratedFromLists(dg, oog types.OriginLists) CuratedFlags {
	return CuratedFlags{DG: dg.Union(), OOG: oog.Union()}
}

// =============================================================================
// XML GENERATION FUNCTIONS
// =============================================================================

// Generate serializes the merged registry into a VCI XML document with
// default options.
func Generate(merged types.Registry, curated CuratedFlags) []byte {
	return GenerateWithOptions(merged, curated, DefaultGenerateOptions())
}

// GenerateWithOptions serializes the merged registry with custom options.
//
// GENERATION PROCESS:
//  1. Write the XML declaration
//  2. Open <vcidata> and <containers>
//  3. Emit one <container> per record, ascending by container number
//  4. Close the wrapper elements
func GenerateWithOptions(merged types.Registry, curated CuratedFlags, options GenerateOptions) []byte {
	var buffer bytes.Buffer

	if options.IncludeXMLDeclaration {
		buffer.WriteString(fmt.Sprintf("<?xml version=\"%s\" encoding=\"%s\"?>\n",
			options.XMLVersion, options.Encoding))
	}

	buffer.WriteString("<vcidata>\n")
	buffer.WriteString(options.Indent)
	buffer.WriteString("<containers>\n")

	for _, number := range merged.Numbers() {
		element := buildContainerElement(number, merged[number], curated)
		writeElement(&buffer, element, options.Indent, 2)
	}

	buffer.WriteString(options.Indent)
	buffer.WriteString("</containers>\n")
	buffer.WriteString("</vcidata>\n")

	return buffer.Bytes()
}

// =============================================================================
// CONTAINER ELEMENT BUILDING
// =============================================================================

// XMLElement represents a generic XML element.
type XMLElement struct {
	Name     string
	Value    string
	Children []XMLElement
}

// buildContainerElement constructs the <container> element for one record.
// The field order is fixed and must not change: the downstream import
// validates positionally.
func buildContainerElement(number types.ContainerNumber, record *types.ContainerRecord, curated CuratedFlags) XMLElement {
	element := XMLElement{Name: "container"}

	add := func(name, value string) {
		element.Children = append(element.Children, XMLElement{Name: name, Value: value})
	}
	addInt := func(name string, value int) {
		add(name, strconv.Itoa(value))
	}

	add("pod", record.POD)
	add("pol", record.POL)

	gross := record.GrossWeight
	if gross == "" {
		gross = "0"
	}
	add("grossweight", gross)

	addInt("coastalcargo", 0)
	addInt("soc", 0)

	imo := record.IMO
	if curated.DG[number] {
		imo = 1
	}
	addInt("imo", imo)

	addInt("damagedcargo", 0)

	oog := record.OOGCargo
	if curated.OOG[number] {
		oog = 1
	}
	addInt("oogcargo", oog)

	add("operatorcode", record.OperatorCode)
	add("fullempty", record.FullEmpty)
	add("typeabrev", record.TypeAbrev)
	addInt("isocode", isoCodeFor(record))
	add("type", record.Type)
	add("number", number.String())
	addInt("OOG_Handling", record.OOGHandling)
	add("Account", record.Account)
	addInt("fromtorail", record.FromToRail)
	addInt("fromtobarge", record.FromToBarge)
	addInt("fromtotpf", record.FromToTPF)
	addInt("fromtotruck", record.FromToTruck)
	addInt("transdischargelocal", 0)
	addInt("transloadlocal", 0)
	add("transdischargeservicecode", "")
	add("transloadservicecode", "")
	addInt("transdischargeoverseas", 0)
	addInt("transloadoverseas", 0)
	addInt("transdischargecoastalflag", 0)
	addInt("transloadcoastalflag", 0)
	addInt("Terminal", 0)

	stow, _ := ascparser.ExtractStowPosition(record.Line)
	add("stowposition", stow)

	return element
}

// isoCodeFor recomputes the numeric type code at export time: the static
// table wins when the current abbreviation is mapped, then any stored code,
// then the default 1.
func isoCodeFor(record *types.ContainerRecord) int {
	if record.TypeAbrev != "" {
		if code, ok := typemap.Code(record.TypeAbrev); ok {
			return code
		}
	}
	if record.ISOCode != 0 {
		return record.ISOCode
	}
	return 1
}

// =============================================================================
// HELPER FUNCTIONS
// =============================================================================

// writeElement writes an XML element to the buffer with indentation.
func writeElement(buffer *bytes.Buffer, element XMLElement, indent string, level int) {
	// Write indentation.
	for i := 0; i < level; i++ {
		buffer.WriteString(indent)
	}

	// Write opening tag.
	buffer.WriteString("<")
	buffer.WriteString(element.Name)

	// Check if element has children or value.
	if len(element.Children) == 0 && element.Value == "" {
		// Self-closing tag.
		buffer.WriteString("/>\n")
		return
	}

	buffer.WriteString(">")

	// Write value or children.
	if element.Value != "" {
		// Simple element with text value.
		buffer.WriteString(escapeXML(element.Value))
	} else {
		// Element with children.
		buffer.WriteString("\n")

		for _, child := range element.Children {
			writeElement(buffer, child, indent, level+1)
		}

		// Write indentation for closing tag.
		for i := 0; i < level; i++ {
			buffer.WriteString(indent)
		}
	}

	// Write closing tag.
	buffer.WriteString("</")
	buffer.WriteString(element.Name)
	buffer.WriteString(">\n")
}

// escapeXML escapes special characters for XML.
func escapeXML(s string) string {
	var buffer bytes.Buffer

	for _, r := range s {
		switch r {
		case '&':
			buffer.WriteString("&amp;")
		case '<':
			buffer.WriteString("&lt;")
		case '>':
			buffer.WriteString("&gt;")
		case '"':
			buffer.WriteString("&quot;")
		case '\'':
			buffer.WriteString("&apos;")
		default:
			buffer.WriteRune(r)
		}
	}

	return buffer.String()
}
