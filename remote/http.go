package remote

import (
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/femnad/zipguard/internal"
)

const (
	tempPattern  = "zipguard-*.zip"
	userAgentKey = "user-agent"
	userAgent    = "femnad/zipguard"
)

var (
	okStatuses = []int{http.StatusOK}
)

func ReadResponseBody(url string) (io.ReadCloser, error) {
	cl := http.Client{}
	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set(userAgentKey, userAgent)

	resp, err := cl.Do(req)
	if err != nil {
		return nil, err
	}

	statusCode := resp.StatusCode
	if !internal.Contains(okStatuses, statusCode) {
		resp.Body.Close()
		return nil, fmt.Errorf("error reading response, got status %d from URL %s", statusCode, url)
	}

	return resp.Body, nil
}

// DownloadTemp saves the response body of url to a new temporary file and returns the file's path. The
// caller is responsible for removing it.
func DownloadTemp(url string) (string, error) {
	body, err := ReadResponseBody(url)
	if err != nil {
		return "", err
	}
	defer body.Close()

	out, err := os.CreateTemp("", tempPattern)
	if err != nil {
		return "", err
	}

	_, err = io.Copy(out, body)
	closeErr := out.Close()
	if err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(out.Name())
		return "", err
	}

	return out.Name(), nil
}
