// internal/app/system/csvutil/samples.go
package csvutil

// Sample roster files offered for download.
const (
	SampleStudentsCSV = "id,name,email,phone,spoc\n" +
		"STU001,John Doe,john@iift.edu,+91-9876543210,ADITYA SINGH\n" +
		"STU002,Jane Smith,jane@iift.edu,+91-9876543211,ADITYA SINGH"

	SampleMentorsCSV = "id,name,email,phone,availability,slots\n" +
		"MEN001,Dr. Kumar,kumar@company.com,+91-9876543210,2025-10-16;2025-10-17,afternoon;evening\n" +
		"MEN002,Ms. Sharma,sharma@company.com,+91-9876543211,2025-10-16;2025-10-18,afternoon"
)

// Sample returns the sample file for kind ("students" or "mentors").
func Sample(kind string) (string, bool) {
	switch kind {
	case "students":
		return SampleStudentsCSV, true
	case "mentors":
		return SampleMentorsCSV, true
	}
	return "", false
}
