package export

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// AppendLog appends one entry for the render to the log file at path
func AppendLog(path, imagePath string, rec Record) error {
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("opening render log: %w", err)
	}
	defer file.Close()

	if err := WriteLog(file, imagePath, rec); err != nil {
		return fmt.Errorf("writing render log: %w", err)
	}
	return nil
}

// WriteLog writes a human readable entry for the render, followed by a separator
func WriteLog(w io.Writer, imagePath string, rec Record) error {
	lines := []string{
		fmt.Sprintf("image: %s", imagePath),
		fmt.Sprintf("time: %v", rec.Duration),
		fmt.Sprintf("resolution: %d x %d px", rec.Width, rec.Height),
		fmt.Sprintf("aspect ratio: %g", rec.AspectRatio),
		fmt.Sprintf("multi: %d", rec.Workers),
		fmt.Sprintf("reflection: %g", rec.Reflection),
		fmt.Sprintf("max depth level: %d", rec.MaxDepth),
		fmt.Sprintf("camera: %s", rec.Camera),
		fmt.Sprintf("light: %s", rec.Light),
		fmt.Sprintf("objects: [%s]", strings.Join(rec.Objects, ", ")),
	}

	entry := strings.Join(lines, "\n") + "\n\n" + strings.Repeat("# ", 20) + "\n\n"
	_, err := io.WriteString(w, entry)
	return err
}
