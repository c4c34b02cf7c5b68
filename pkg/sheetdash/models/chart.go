package models

// Series is one named value sequence of a stacked chart.
type Series struct {
	// Name is the distinct series value the sequence belongs to.
	Name string `json:"name" yaml:"name"`
	// Data holds one value per label; missing combinations are "".
	Data []string `json:"data" yaml:"data"`
}

// ChartData is the chart-ready shape handed to a rendering collaborator.
type ChartData struct {
	// Labels is the category axis in first-occurrence order.
	Labels []string `json:"labels" yaml:"labels"`
	// Values holds one value per label. Empty for stacked charts.
	Values []string `json:"values" yaml:"values"`
	// Series is set for stacked charts only.
	Series []Series `json:"series,omitempty" yaml:"series,omitempty"`
}

// TableData is the projection of the tabular model onto a table item's columns.
type TableData struct {
	// Columns lists the bound columns in binding order, duplicates included.
	Columns []string `json:"columns" yaml:"columns"`
	// Rows holds one value per column for every row of the model.
	Rows [][]Value `json:"rows" yaml:"rows"`
}

// EmbeddedChart describes a chart object found in a workbook's drawing parts.
type EmbeddedChart struct {
	// Sheet is the sheet the chart is anchored on.
	Sheet string `json:"sheet" yaml:"sheet"`
	// Name is the drawing object name.
	Name string `json:"name" yaml:"name"`
	// Type is the OOXML plot element, e.g. "barChart".
	Type string `json:"type" yaml:"type"`
	// BarDir is "bar" or "col" for bar plots.
	BarDir string `json:"bar_dir,omitempty" yaml:"bar_dir,omitempty"`
	// Grouping is the bar/line grouping, e.g. "clustered" or "stacked".
	Grouping string `json:"grouping,omitempty" yaml:"grouping,omitempty"`
	// Title is the chart title text.
	Title string `json:"title,omitempty" yaml:"title,omitempty"`
	// Position is the top-left anchor in pixels.
	Position Point `json:"position" yaml:"position"`
	// Size is the extent in pixels.
	Size Size `json:"size" yaml:"size"`
}
