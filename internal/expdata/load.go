package expdata

import (
	fsutil "github.com/kk-code-lab/expplot/internal/fs"
)

// Load opens path, parses it and closes it again. perBlock selects
// ModePerBlock; otherwise the result is flattened. Errors opening or reading
// the file are returned unchanged in kind.
func Load(path string, perBlock bool) (*Result, error) {
	return Parser{}.Load(path, perBlock)
}

// Load is the Parser form of the package-level Load.
func (p Parser) Load(path string, perBlock bool) (*Result, error) {
	f, err := fsutil.OpenText(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()

	if p.Debugf != nil {
		p.Debugf("loading %s (%s)", path, f.Encoding)
	}

	mode := ModeFlattened
	if perBlock {
		mode = ModePerBlock
	}
	return p.Parse(f, mode)
}
