package validator

import (
	"regexp"
	"strconv"
)

var (
	gstinPattern = regexp.MustCompile(`^[0-9]{2}[A-Z]{5}[0-9]{4}[A-Z][1-9A-Z]Z[0-9A-Z]$`)
	panPattern   = regexp.MustCompile(`^[A-Z]{5}[0-9]{4}[A-Z]$`)
	phonePattern = regexp.MustCompile(`^[6-9][0-9]{9}$`)
	yearPattern  = regexp.MustCompile(`^([0-9]{4})-([0-9]{4})$`)
)

// stateNames maps GST state codes to state or union territory names.
var stateNames = map[string]string{
	"01": "Jammu and Kashmir",
	"02": "Himachal Pradesh",
	"03": "Punjab",
	"04": "Chandigarh",
	"05": "Uttarakhand",
	"06": "Haryana",
	"07": "Delhi",
	"08": "Rajasthan",
	"09": "Uttar Pradesh",
	"10": "Bihar",
	"11": "Sikkim",
	"12": "Arunachal Pradesh",
	"13": "Nagaland",
	"14": "Manipur",
	"15": "Mizoram",
	"16": "Tripura",
	"17": "Meghalaya",
	"18": "Assam",
	"19": "West Bengal",
	"20": "Jharkhand",
	"21": "Odisha",
	"22": "Chhattisgarh",
	"23": "Madhya Pradesh",
	"24": "Gujarat",
	"25": "Daman and Diu",
	"26": "Dadra and Nagar Haveli and Daman and Diu",
	"27": "Maharashtra",
	"28": "Andhra Pradesh (Old)",
	"29": "Karnataka",
	"30": "Goa",
	"31": "Lakshadweep",
	"32": "Kerala",
	"33": "Tamil Nadu",
	"34": "Puducherry",
	"35": "Andaman and Nicobar Islands",
	"36": "Telangana",
	"37": "Andhra Pradesh",
	"38": "Ladakh",
	"97": "Other Territory",
	"99": "Centre Jurisdiction",
}

// IsPAN reports whether s is a syntactically valid PAN.
func IsPAN(s string) bool {
	return len(s) == 10 && panPattern.MatchString(s)
}

// IsGSTIN reports whether s is a syntactically valid GSTIN.
func IsGSTIN(s string) bool {
	return len(s) == 15 && gstinPattern.MatchString(s)
}

// IsTAN reports whether s has the length of a TAN. No stricter shape is enforced.
func IsTAN(s string) bool {
	return len(s) == 10
}

// IsPhone reports whether s is a ten-digit Indian mobile number.
func IsPhone(s string) bool {
	return phonePattern.MatchString(s)
}

// IsYearRange reports whether s names a financial or assessment year such
// as "2024-2025": two consecutive four-digit years.
func IsYearRange(s string) bool {
	m := yearPattern.FindStringSubmatch(s)
	if m == nil {
		return false
	}
	start, _ := strconv.Atoi(m[1])
	end, _ := strconv.Atoi(m[2])
	return end == start+1
}

// StateCode returns the first two characters of a valid GSTIN, or "".
func StateCode(gstin string) string {
	if !IsGSTIN(gstin) {
		return ""
	}
	return gstin[:2]
}

// StateName returns the display name for a GST state code, or "" when unknown.
func StateName(code string) string {
	return stateNames[code]
}

// GSTINCheck is the outcome of checking a GSTIN for display.
type GSTINCheck struct {
	GSTIN       string `json:"gstin"`
	Valid       bool   `json:"valid"`
	StateCode   string `json:"state_code,omitempty"`
	StateName   string `json:"state_name,omitempty"`
	EmbeddedPAN string `json:"embedded_pan,omitempty"`
	EntityCode  int    `json:"entity_code,omitempty"`
	Message     string `json:"message"`
}

// CheckGSTIN validates gstin and extracts the segments encoded in it. The
// state code is informational and is not checked against the state table.
func CheckGSTIN(gstin string) GSTINCheck {
	res := GSTINCheck{GSTIN: gstin}
	switch {
	case len(gstin) != 15:
		res.Message = "GSTIN must be 15 characters"
		return res
	case !gstinPattern.MatchString(gstin):
		res.Message = "GSTIN format is invalid"
		return res
	}
	res.Valid = true
	res.StateCode = gstin[:2]
	res.StateName = StateName(res.StateCode)
	res.EmbeddedPAN = gstin[2:12]
	if n, err := strconv.ParseInt(gstin[12:13], 36, 0); err == nil {
		res.EntityCode = int(n)
	}
	res.Message = "GSTIN format is valid"
	return res
}
