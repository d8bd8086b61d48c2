package script

// Section is one titled, time-estimated chunk of a script.
type Section struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	Duration int    `json:"duration"` // seconds
}

// ConversionResult is the output of converting one document.
type ConversionResult struct {
	Title    string    `json:"title"`
	Author   string    `json:"author,omitempty"`
	Sections []Section `json:"sections"`
}

// TotalDuration sums the estimated speaking time of all sections in seconds.
func TotalDuration(sections []Section) int {
	total := 0
	for _, s := range sections {
		total += s.Duration
	}
	return total
}

// TotalDuration returns the estimated speaking time of the whole result.
func (r ConversionResult) TotalDuration() int {
	return TotalDuration(r.Sections)
}
