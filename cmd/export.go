package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ginjaninja78/recordkeeper/internal/xmlwriter"
	"github.com/ginjaninja78/recordkeeper/pkg/utils"
)

// Export formats accepted by --export.
const (
	formatXML  = "xml"
	formatXLSX = "xlsx"
)

// exporter renders one kind of document in every supported format.
type exporter struct {
	// kind fills the {kind} placeholder of the output file name.
	kind string

	xml  func() ([]byte, error)
	xlsx func(path string) error
}

// parseExportFormats normalizes and de-duplicates --export values.
func parseExportFormats(values []string) ([]string, error) {
	var formats []string
	seen := map[string]bool{}
	for _, v := range values {
		f := strings.ToLower(strings.TrimSpace(v))
		if f == "" || seen[f] {
			continue
		}
		if f != formatXML && f != formatXLSX {
			return nil, fmt.Errorf("unknown export format %q (want %s or %s)", v, formatXML, formatXLSX)
		}
		seen[f] = true
		formats = append(formats, f)
	}

	return formats, nil
}

// export writes the document in each requested format to the output
// directory and reports the paths.
func (a *app) export(cmd *cobra.Command, formats []string, e exporter) error {
	if len(formats) == 0 {
		return nil
	}

	fm := utils.NewFileManager(a.cfg.OutputDir, a.cfg.OutputFileFormat)
	fm.Now = a.now
	if err := fm.EnsureDirectories(); err != nil {
		return err
	}

	p := a.printer(cmd)
	p.Blank()
	for _, format := range formats {
		path := fm.OutputPath(e.kind, "."+format)

		switch format {
		case formatXML:
			data, err := e.xml()
			if err != nil {
				return fmt.Errorf("failed to generate %s XML: %w", e.kind, err)
			}
			if err := xmlwriter.WriteFile(path, data); err != nil {
				return err
			}
		case formatXLSX:
			if err := e.xlsx(path); err != nil {
				return fmt.Errorf("failed to write %s workbook: %w", e.kind, err)
			}
		}

		a.lggr.Infow("exported", "kind", e.kind, "format", format, "path", path)
		p.Line("Exported %s %s: %s", e.kind, strings.ToUpper(format), path)
	}

	return nil
}
