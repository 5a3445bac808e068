package common

import "os"

func IsRegularFile(info os.FileInfo) bool {
	return info.Mode().IsRegular()
}
