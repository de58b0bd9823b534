// Package tally reconstructs volunteer work sessions from noisy
// clock-in/clock-out rows, resolves conflicting time sources, filters
// undocumented outliers, and ranks volunteers by recent activity.
//
// Quick start:
//
//	a, err := tally.New(tally.WithQualityStandard(8))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	report, _ := a.Analyze(rows)
//	for _, r := range report.Ranking {
//	    fmt.Printf("%d. %s: %.2f hours\n", r.Rank, r.Name, r.Hours)
//	}
//
// An Analyzer is safe for concurrent use and keeps no state between
// runs: the same rows, alias table, and threshold always produce an
// identical report.
package tally
