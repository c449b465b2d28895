package api

// ThemeResponse is the resolved preference for the calling visitor.
type ThemeResponse struct {
	Theme  string `json:"theme" example:"dark"`
	Source string `json:"source" example:"stored"`
}

// SetThemeRequest is the body of PUT /theme.
type SetThemeRequest struct {
	Theme string `json:"theme" example:"light"`
}
