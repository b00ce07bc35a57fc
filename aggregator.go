package rulevalidation

// aggregator collects failed checks of one validation call. Its buffer holds
// one entry per scheduled check and each check pushes at most once, so push
// never blocks and nothing is dropped.
type aggregator struct {
	ch chan ErrorEntry
}

func newAggregator(checks int) *aggregator {
	return &aggregator{ch: make(chan ErrorEntry, checks)}
}

func (a *aggregator) push(e ErrorEntry) {
	a.ch <- e
}

// drain must be called once, after every producer has returned.
func (a *aggregator) drain() []ErrorEntry {
	close(a.ch)
	entries := make([]ErrorEntry, 0, len(a.ch))
	for e := range a.ch {
		entries = append(entries, e)
	}
	return entries
}
