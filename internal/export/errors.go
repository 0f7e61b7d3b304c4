package export

import "errors"

// ErrExport indicates the workbook could not be produced or written.
// Export failures never touch the tracker file.
var ErrExport = errors.New("export failed")
