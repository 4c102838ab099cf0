package field

import "github.com/katalvlaran/lifegrid/group"

// worker is one long-lived goroutine in the Field's pool. It receives an
// owned chunk of Groups, steps each one, and sends back the flattened
// owned result. No state is shared across the channel handover: the
// worker never touches the Field's index, only the chunk and result
// slices it owns for the duration of one send/receive.
type worker struct {
	in  chan []*group.Group
	out chan []*group.Group
}

// spawnWorkers starts n long-lived worker goroutines. Each loops until
// its input channel is closed, at which point its loop returns and its
// output channel is closed too (the zero-value receive signals worker
// death to the dispatcher, see errors.go).
// Complexity: O(n) goroutines started, O(1) per call beyond that.
func spawnWorkers(n int) []*worker {
	workers := make([]*worker, n)
	for i := range workers {
		w := &worker{in: make(chan []*group.Group), out: make(chan []*group.Group)}
		go func() {
			defer close(w.out)
			for chunk := range w.in {
				var stepped []*group.Group
				for _, g := range chunk {
					successors, ok := group.Step(g)
					if !ok {
						continue
					}
					stepped = append(stepped, successors...)
				}
				w.out <- stepped
			}
		}()
		workers[i] = w
	}
	return workers
}

// partition splits groups into n chunks for round-robin dispatch: size
// ceil(len(groups)/n), with the remainder spread over the first chunks
// rather than piled onto the last one, so no single worker is left
// holding a disproportionately large share of the work.
// Complexity: O(len(groups)).
func partition(groups []*group.Group, n int) [][]*group.Group {
	chunks := make([][]*group.Group, n)
	if n == 0 {
		return chunks
	}
	base, rem := len(groups)/n, len(groups)%n
	start := 0
	for i := 0; i < n; i++ {
		size := base
		if i < rem {
			size++
		}
		chunks[i] = groups[start : start+size]
		start += size
	}
	return chunks
}

// closeWorkers closes every worker's input channel, causing each loop to
// terminate on the next receive. Safe to call on an empty slice.
func closeWorkers(workers []*worker) {
	for _, w := range workers {
		close(w.in)
	}
}
