package sheets

// Sheet rows are positionally ordered as
// [name, email, status, nationalID, ticketNumber].

// NationalIDColumn is the zero-based index of the national ID cell used
// by ticket verification.
const NationalIDColumn = 3

// RequiredColumns are the header names an import needs. The check runs
// against the first data record only; later rows are taken as-is.
var RequiredColumns = []string{"nationalID", "name", "email", "phone", "ticketNumber"}

// Zip converts raw rows into records mapping header name to cell value.
// The first row is the header; rows shorter than the header leave the
// unmatched columns absent.
func Zip(rows [][]string) []map[string]string {
	if len(rows) < 2 {
		return nil
	}
	header := rows[0]
	records := make([]map[string]string, 0, len(rows)-1)
	for _, row := range rows[1:] {
		rec := make(map[string]string, len(header))
		for i, name := range header {
			if i < len(row) {
				rec[name] = row[i]
			}
		}
		records = append(records, rec)
	}
	return records
}

// Missing returns the required column names absent from the record, in
// RequiredColumns order.
func Missing(record map[string]string) []string {
	var missing []string
	for _, name := range RequiredColumns {
		if _, ok := record[name]; !ok {
			missing = append(missing, name)
		}
	}
	return missing
}
