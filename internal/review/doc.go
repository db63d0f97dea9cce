// Package review implements the human-in-the-loop gate for workflow runs.
//
// The console reviewer renders a summary of the run so far, then blocks on a
// single-line directive: continue, synthesize, edit, or quit. Input and
// output are injected per reviewer, so each concurrent run suspends on its
// own reader and one run's wait never blocks another's.
package review
