package internal

import (
	"os"
)

func EnsureFileAbsent(file string) error {
	err := os.Remove(file)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

func EnsureDirAbsent(dir string) error {
	_, err := os.Stat(dir)
	if os.IsNotExist(err) {
		return nil
	} else if err != nil {
		return err
	}
	return os.RemoveAll(dir)
}
