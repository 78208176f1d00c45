package expdata

// Flatten concatenates blocks into one series, appending a gap point after
// every block so each one draws as a separate line.
func Flatten(blocks []Block) Block {
	n := 0
	for _, b := range blocks {
		n += len(b) + 1
	}
	out := make(Block, 0, n)
	for _, b := range blocks {
		out = append(out, b...)
		out = append(out, GapPoint())
	}
	return out
}
