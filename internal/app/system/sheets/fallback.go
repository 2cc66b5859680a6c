package sheets

// FallbackRows is the compiled-in sample table returned when both the
// CSV export and the Sheets API are unreachable. Header plus five data
// rows, in the standard column order.
func FallbackRows() [][]string {
	return [][]string{
		{"name", "email", "status", "nationalID", "ticketNumber"},
		{"Ahmed Hassan", "ahmed.hassan@example.com", "confirmed", "29807150102345", "TKT-0001"},
		{"Sara Mostafa", "sara.mostafa@example.com", "confirmed", "30003220104467", "TKT-0002"},
		{"Omar Khaled", "omar.khaled@example.com", "pending", "29911010205578", "TKT-0003"},
		{"Nour Ibrahim", "nour.ibrahim@example.com", "confirmed", "30105180301189", "TKT-0004"},
		{"Youssef Adel", "youssef.adel@example.com", "confirmed", "29706250407792", "TKT-0005"},
	}
}
