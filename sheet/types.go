package sheet

// ValueRender determines how values are rendered in read responses.
//
// Ref. https://developers.google.com/sheets/api/reference/rest/v4/ValueRenderOption
type ValueRender string

const (
	// Formatted values are calculated and formatted according to the
	// cell's formatting, in the spreadsheet's locale.
	Formatted ValueRender = "FORMATTED_VALUE"

	// Unformatted values are calculated but not formatted.
	Unformatted ValueRender = "UNFORMATTED_VALUE"

	// Formula renders the stored formulas without calculating them.
	Formula ValueRender = "FORMULA"
)

// Dimension is the major dimension of a value matrix.
type Dimension string

const (
	Rows    Dimension = "ROWS"
	Columns Dimension = "COLUMNS"
)

// FormatType is the number format of a cell.
//
// Ref. https://developers.google.com/sheets/api/reference/rest/v4/spreadsheets/cells#NumberFormatType
type FormatType string

const (
	FormatNone       FormatType = ""
	FormatText       FormatType = "TEXT"
	FormatNumber     FormatType = "NUMBER"
	FormatPercent    FormatType = "PERCENT"
	FormatCurrency   FormatType = "CURRENCY"
	FormatDate       FormatType = "DATE"
	FormatTime       FormatType = "TIME"
	FormatDateTime   FormatType = "DATE_TIME"
	FormatScientific FormatType = "SCIENTIFIC"
)

// ChartType enumerates the basic embedded chart types.
//
// Ref. https://developers.google.com/sheets/api/reference/rest/v4/spreadsheets/charts#BasicChartType
type ChartType string

const (
	ChartBar         ChartType = "BAR"
	ChartLine        ChartType = "LINE"
	ChartArea        ChartType = "AREA"
	ChartColumn      ChartType = "COLUMN"
	ChartScatter     ChartType = "SCATTER"
	ChartCombo       ChartType = "COMBO"
	ChartSteppedArea ChartType = "STEPPED_AREA"
)

// ExportFormat is a Drive export MIME type with the matching file extension.
type ExportFormat struct {
	MimeType  string
	Extension string
}

var (
	ExportCSV  = ExportFormat{"text/csv", ".csv"}
	ExportTSV  = ExportFormat{"text/tab-separated-values", ".tsv"}
	ExportPDF  = ExportFormat{"application/pdf", ".pdf"}
	ExportXLSX = ExportFormat{"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", ".xlsx"}
	ExportODS  = ExportFormat{"application/x-vnd.oasis.opendocument.spreadsheet", ".ods"}
	ExportHTML = ExportFormat{"application/zip", ".zip"}
)

// Permission roles and types accepted by the Drive permissions API.
const (
	RoleOwner     = "owner"
	RoleOrganizer = "organizer"
	RoleWriter    = "writer"
	RoleCommenter = "commenter"
	RoleReader    = "reader"
)

const (
	PermissionUser   = "user"
	PermissionGroup  = "group"
	PermissionDomain = "domain"
	PermissionAnyone = "anyone"
)
