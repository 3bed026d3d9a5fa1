package faq

import "fmt"

// DataLoadError reports that the FAQ source could not be read, parsed or validated.
type DataLoadError struct {
	Source string
	Err    error
}

func (e *DataLoadError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("load faq data from %s", e.Source)
	}
	return fmt.Sprintf("load faq data from %s: %v", e.Source, e.Err)
}

func (e *DataLoadError) Unwrap() error {
	return e.Err
}
