//go:build !unix

package host

import "os"

func writable(dir string) bool {
	f, err := os.CreateTemp(dir, ".wdabuild-probe-*")
	if err != nil {
		return false
	}
	name := f.Name()
	_ = f.Close()
	_ = os.Remove(name)
	return true
}
