package writer

import (
	"bytes"
	_ "embed"
	"fmt"
	"strconv"
	"strings"
	"text/template"

	"github.com/nersc/fgr/pkg/placement"
)

//go:embed templates/ior.sh.tmpl
var iorShellTemplate string

// IORShellInput holds everything the PBS/aprun launcher script needs.
type IORShellInput struct {
	RunID      string
	Strategy   string
	Partition  string
	NumRanks   int
	Path       string
	IORBin     string
	StripeSize string
	Ranks      []placement.RankResult
}

type iorShellLine struct {
	StripeIndex int
	FileIndex   int
}

type iorShellData struct {
	IORShellInput
	Lines     []iorShellLine
	ClientCSV string
}

// IORShellGenerator renders the placement shell script from embedded
// templates, grounded on the teacher's text/template cloud-init generator.
type IORShellGenerator struct {
	tmpl *template.Template
}

// NewIORShellGenerator parses the embedded template once.
func NewIORShellGenerator() (*IORShellGenerator, error) {
	tmpl, err := template.New("ior-shell").Parse(iorShellTemplate)
	if err != nil {
		return nil, fmt.Errorf("writer: parse ior shell template: %w", err)
	}
	return &IORShellGenerator{tmpl: tmpl}, nil
}

// Generate renders the PBS batch script for a placement run.
func (g *IORShellGenerator) Generate(in IORShellInput) (string, error) {
	lines := make([]iorShellLine, len(in.Ranks))
	clients := make([]string, len(in.Ranks))
	for i, r := range in.Ranks {
		lines[i] = iorShellLine{StripeIndex: r.OST % 1008, FileIndex: i}
		clients[i] = strconv.FormatInt(int64(r.Client), 10)
	}

	data := iorShellData{
		IORShellInput: in,
		Lines:         lines,
		ClientCSV:     strings.Join(clients, ","),
	}

	var buf bytes.Buffer
	if err := g.tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("writer: execute ior shell template: %w", err)
	}
	return buf.String(), nil
}
