package views

import "github.com/pterm/pterm"

type SystemInfoItem struct {
	ConfigPath string
	BaseURL    string
	Production bool
	UserID     int64
	LogLevel   string
	Listen     string
	SandboxDB  string
}

func RenderSystemInfo(data SystemInfoItem) error {
	mode := pterm.Yellow("Development (verbose)")
	if data.Production {
		mode = pterm.Green("Production")
	}

	configPath := data.ConfigPath
	if configPath == "" {
		configPath = pterm.Gray("Not Found (defaults)")
	}

	tableData := pterm.TableData{
		{"Configuration File", configPath},
		{"API Base URL", data.BaseURL},
		{"Mode", mode},
		{"User ID", pterm.Sprint(data.UserID)},
		{"Log Level", data.LogLevel},
		{"Sandbox Listen", data.Listen},
		{"Sandbox Database", data.SandboxDB},
	}

	return pterm.DefaultTable.WithData(tableData).Render()
}
