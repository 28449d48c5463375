package sheets

type EnsureSheetInput struct {
	// Sheet is the worksheet title
	Sheet string

	// Columns becomes the header row when the worksheet has to be created
	Columns []string
}

type ReadRowsInput struct {
	Sheet string
}

type ReadRowsOutput struct {
	// Header is the first row, empty when the worksheet holds no cells
	Header []string

	// Rows are the data rows below the header, top to bottom
	Rows [][]string
}

type ReplaceAllInput struct {
	Sheet   string
	Columns []string
	Rows    [][]string
}

type UpdateRowInput struct {
	Sheet string

	// Row is 1-based and includes the header row
	Row int

	Values []string
}

type FindRowByIDInput struct {
	Sheet string

	// ID is compared as a trimmed string against the first column
	ID string
}

type FindRowByIDOutput struct {
	// Row is the 1-based index of the matching row, header included
	Row int
}
