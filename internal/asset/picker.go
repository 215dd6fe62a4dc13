package asset

import (
	"errors"

	"github.com/ncruces/zenity"
)

// ErrNoSelection is returned when the user closes the file dialog.
var ErrNoSelection = errors.New("no image selected")

// Pick opens the native file dialog and returns the chosen image path.
func Pick() (string, error) {
	filename, err := zenity.SelectFile(
		zenity.Title("Open Source Image"),
		zenity.FileFilters{{
			Name:     "Images",
			Patterns: []string{"*.png", "*.jpg", "*.jpeg", "*.gif", "*.bmp", "*.webp"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return "", ErrNoSelection
		}
		return "", err
	}
	return filename, nil
}
