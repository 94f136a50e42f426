package hn

import "fmt"

// FetchError reports a failed request against the item source.
type FetchError struct {
	Op     string
	URL    string
	Status int
	Err    error
}

func (e *FetchError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s: %s returned unexpected status code: %d", e.Op, e.URL, e.Status)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}
