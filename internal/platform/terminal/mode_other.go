//go:build !(linux || darwin || freebsd || netbsd || openbsd)

package terminal

import "os"

func flushInput(*os.File) error {
	return nil
}
