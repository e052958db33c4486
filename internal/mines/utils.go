package mines

// celltodo is a FIFO of cell indices threaded through a next array, so a
// cell can be queued at most once per pass without extra allocations.
type celltodo struct {
	next       []int
	head, tail int
}

func newCelltodo(size int) *celltodo {
	return &celltodo{next: make([]int, size), head: -1, tail: -1}
}

func (std *celltodo) add(i int) {
	if std.tail >= 0 {
		std.next[std.tail] = i
	} else {
		std.head = i
	}
	std.tail = i
	std.next[i] = -1
}

func (std *celltodo) pop() (i int, ok bool) {
	if std.head < 0 {
		return -1, false
	}
	i = std.head
	std.head = std.next[i]
	if std.head < 0 {
		std.tail = -1
	}
	return i, true
}

// neighbours calls fn for every cell of the clipped Moore neighbourhood of i,
// excluding i itself.
func (p GameParams) neighbours(i int, fn func(j int)) {
	row, col := p.point(i)
	for r := max(0, row-1); r < min(p.Rows, row+2); r++ {
		for c := max(0, col-1); c < min(p.Cols, col+2); c++ {
			if r != row || c != col {
				fn(p.index(r, c))
			}
		}
	}
}
