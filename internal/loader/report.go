package loader

import "github.com/pterm/pterm"

// PrintReport writes the per-table outcome and a closing summary in mapping
// order.
func PrintReport(results map[string]Result) {
	pterm.DefaultSection.Println("Load summary")

	var loaded, skipped, failed int
	for _, table := range TableOrder() {
		res, ok := results[table]
		if !ok {
			continue
		}
		switch res.Status {
		case StatusSuccess:
			loaded++
			pterm.Success.Printfln("%s: %d rows, %d columns", table, res.Rows, res.Columns)
		case StatusSkipped:
			skipped++
			pterm.Warning.Printfln("%s: skipped (%s)", table, res.Reason)
		default:
			failed++
			pterm.Error.Printfln("%s: %s", table, res.Error)
		}
	}

	pterm.Info.Printfln("%d loaded, %d skipped, %d failed", loaded, skipped, failed)
}

// HasErrors reports whether any table recorded an error. Drives the CLI's
// exit code on partial failure.
func HasErrors(results map[string]Result) bool {
	for _, res := range results {
		if res.Status == StatusError || res.Status == StatusFailed {
			return true
		}
	}
	return false
}
