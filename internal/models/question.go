package models

// Question is one yes/no question bound to a single feature. Weight in
// (0,1] expresses how discriminating the question tends to be and scales
// its information gain during selection. Questions are immutable after
// load.
type Question struct {
	Text    string  `json:"text"`
	Feature string  `json:"feature"`
	Weight  float64 `json:"weight"`
}
