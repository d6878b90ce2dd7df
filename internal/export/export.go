// Package export builds the printable document for a single todo. The
// builder produces an ordered tree of styled text blocks; turning those
// blocks into PDF bytes is delegated to the renderer in pdf.go.
package export

import (
	"fmt"
	"time"

	"github.com/mwhitaker/punchlist/internal/model"
	"github.com/mwhitaker/punchlist/internal/todo"
)

// Style tags a block for the renderer. The builder knows nothing about
// fonts or layout, only which role a block plays.
type Style string

const (
	StyleHeader        Style = "header"
	StyleStatusDone    Style = "status_done"
	StyleStatusPending Style = "status_pending"
	StyleLabel         Style = "label"
	StyleBody          Style = "body"
	StyleFooter        Style = "footer"
)

// Block is one styled run of text in the document.
type Block struct {
	Style Style
	Text  string
}

// Document is the ordered content of one exported todo.
type Document struct {
	Blocks []Block
}

// referenceLink appears in the footer of every export.
const referenceLink = "https://github.com/mwhitaker/punchlist"

// Filename returns the download name for a todo's export.
func Filename(id string) string {
	return fmt.Sprintf("todo-%s.pdf", id)
}

// BuildDocument assembles the export content for one todo. Optional fields
// produce no blocks when absent, and contractor details only appear when a
// contractor is actually hired.
func BuildDocument(t *model.Todo, now time.Time) Document {
	var blocks []Block

	blocks = append(blocks, Block{Style: StyleHeader, Text: t.Title})

	if t.Completed {
		blocks = append(blocks, Block{Style: StyleStatusDone, Text: "Status: Completed"})
	} else {
		blocks = append(blocks, Block{Style: StyleStatusPending, Text: "Status: Pending"})
	}

	if t.Description != nil {
		blocks = append(blocks,
			Block{Style: StyleLabel, Text: "Description"},
			Block{Style: StyleBody, Text: *t.Description},
		)
	}
	if t.Notes != nil {
		blocks = append(blocks,
			Block{Style: StyleLabel, Text: "Notes"},
			Block{Style: StyleBody, Text: *t.Notes},
		)
	}

	if t.ContractorHired {
		if t.ContractorName != nil {
			blocks = append(blocks,
				Block{Style: StyleLabel, Text: "Contractor"},
				Block{Style: StyleBody, Text: *t.ContractorName},
			)
		}
		if t.ContractorDetails != nil {
			blocks = append(blocks,
				Block{Style: StyleLabel, Text: "Contractor details"},
				Block{Style: StyleBody, Text: *t.ContractorDetails},
			)
		}
	}

	if t.Cost != nil {
		blocks = append(blocks,
			Block{Style: StyleLabel, Text: "Estimated cost"},
			Block{Style: StyleBody, Text: todo.FormatCost(*t.Cost)},
		)
	}

	blocks = append(blocks, Block{
		Style: StyleFooter,
		Text:  fmt.Sprintf("Exported %s - %s", now.Format("Jan 2, 2006 15:04 MST"), referenceLink),
	})

	return Document{Blocks: blocks}
}
