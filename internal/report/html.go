// Package report generates the benchmark dashboard: an HTML index page and
// a Markdown summary written into the reports directory.
package report

import (
	"fmt"
	"strings"
	"time"
)

// DashboardTitle is the literal heading of the generated index page.
const DashboardTitle = "LSPbridge Performance Dashboard"

// IndexHTML returns the complete static dashboard page embedding the trends
// content verbatim. It is a pure function of its arguments; all surrounding
// chrome (header, metric cards, navigation, footer) is fixed.
func IndexHTML(trendsContent string, generatedAt time.Time, latencyThresholdPct int) string {
	var html strings.Builder

	html.WriteString(`<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>LSPbridge Benchmark Dashboard</title>
    <style>
        body {
            font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif;
            line-height: 1.6;
            color: #333;
            max-width: 1200px;
            margin: 0 auto;
            padding: 20px;
            background-color: #f5f5f5;
        }
        .header {
            background: linear-gradient(135deg, #667eea 0%, #764ba2 100%);
            color: white;
            padding: 40px 20px;
            border-radius: 10px;
            text-align: center;
            margin-bottom: 30px;
        }
        .content {
            background: white;
            padding: 30px;
            border-radius: 10px;
            box-shadow: 0 2px 10px rgba(0,0,0,0.1);
        }
        .metric {
            display: inline-block;
            background: #f8f9fa;
            padding: 15px 20px;
            margin: 10px;
            border-radius: 8px;
            border-left: 4px solid #007bff;
        }
        .chart {
            text-align: center;
            margin: 30px 0;
        }
        .chart img {
            max-width: 100%;
            height: auto;
            border-radius: 8px;
            box-shadow: 0 2px 8px rgba(0,0,0,0.1);
        }
        .footer {
            text-align: center;
            padding: 20px;
            color: #666;
            font-size: 0.9em;
        }
        h1, h2, h3 { color: #2c3e50; }
        .header h1 { color: white; }
        .status {
            padding: 8px 16px;
            border-radius: 20px;
            display: inline-block;
            font-weight: bold;
            text-transform: uppercase;
            font-size: 0.8em;
        }
        .status.good { background: #d4edda; color: #155724; }
        .status.warning { background: #fff3cd; color: #856404; }
        .status.error { background: #f8d7da; color: #721c24; }
    </style>
</head>
<body>
    <div class="header">
        <h1>`)
	html.WriteString(DashboardTitle)
	html.WriteString(`</h1>
        <p>Automated performance tracking and regression detection</p>
        <span class="status good">System Healthy</span>
    </div>

    <div class="content">
        <div class="metrics">
            <div class="metric">
                <strong>Last Updated</strong><br>
                `)
	html.WriteString(generatedAt.Format("2006-01-02 15:04:05"))
	html.WriteString(`
            </div>
            <div class="metric">
                <strong>Monitoring</strong><br>
                7 Benchmark Groups
            </div>
            <div class="metric">
                <strong>Threshold</strong><br>
                `)
	fmt.Fprintf(&html, "%d%% Regression Alert", latencyThresholdPct)
	html.WriteString(`
            </div>
        </div>

        `)
	html.WriteString(trendsContent)
	html.WriteString(`

        <h2>Available Reports</h2>
        <ul>
            <li><a href="../latest/">Latest Results</a></li>
            <li><a href="../archive/">Historical Archive</a></li>
            <li><a href="https://github.com/lspbridge/lspbridge/actions">CI Pipeline</a></li>
        </ul>
    </div>

    <div class="footer">
        Generated by LSPbridge Benchmark Dashboard |
        <a href="https://github.com/lspbridge/lspbridge">View Source</a>
    </div>
</body>
</html>`)

	return html.String()
}
