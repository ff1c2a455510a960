// Package utils collects various services: simple operations, checksums, compression, configuration.
package utils

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// DirIsAccessible verifies that directory exists and is accessible
func DirIsAccessible(filename string) error {
	fileStat, err := os.Stat(filename)
	if err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("error checking directory '%s': %s", filename, err)
		}
	} else {
		if fileStat.Mode().Perm() == 0000 || unix.Access(filename, unix.W_OK) != nil {
			return fmt.Errorf("'%s' is inaccessible, check access rights", filename)
		}
	}
	return nil
}

// IsDirWritable verifies that directory exists and files can be created in it
func IsDirWritable(path string) error {
	fileStat, err := os.Stat(path)
	if err != nil {
		return err
	}

	if !fileStat.IsDir() {
		return fmt.Errorf("'%s' is not a directory", path)
	}

	if unix.Access(path, unix.W_OK) != nil {
		return fmt.Errorf("'%s' is not writable, check access rights", path)
	}

	return nil
}
