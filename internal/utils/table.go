package utils

import "github.com/MrSnakeDoc/tango/internal/logger"

// RenderTable prints rows under headers through the logger's writer.
func RenderTable(title string, headers []string, rows [][]string) {
	if title != "" {
		logger.Info("%s", title)
	}

	table := logger.CreateTable(headers)

	for _, row := range rows {
		if err := table.Append(row); err != nil {
			logger.LogError("Error appending to table: %v", err)
			return
		}
	}

	if err := table.Render(); err != nil {
		logger.LogError("Error rendering table: %v", err)
	}
}
