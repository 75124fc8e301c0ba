package phone

import "strings"

var dialCodes = map[string]string{
	"AD": "376", "AE": "971", "AF": "93", "AG": "1268", "AI": "1264",
	"AL": "355", "AM": "374", "AO": "244", "AR": "54", "AS": "1684",
	"AT": "43", "AU": "61", "AW": "297", "AZ": "994", "BB": "1246",
	"BE": "32", "BG": "359", "BH": "973", "BR": "55", "CA": "1",
	"CH": "41", "CL": "56", "CN": "86", "CO": "57", "CZ": "420",
	"DE": "49", "DK": "45", "DZ": "213", "EG": "20", "ES": "34",
	"FI": "358", "FR": "33", "GB": "44", "GR": "30", "HK": "852",
	"HU": "36", "ID": "62", "IE": "353", "IL": "972", "IN": "91",
	"IT": "39", "JM": "1876", "JP": "81", "KR": "82", "KW": "965",
	"MX": "52", "MY": "60", "NG": "234", "NL": "31", "NO": "47",
	"NZ": "64", "OM": "968", "PE": "51", "PH": "63", "PL": "48",
	"PT": "351", "QA": "974", "RO": "40", "SA": "966", "SE": "46",
	"SG": "65", "SK": "421", "TH": "66", "TR": "90", "TW": "886",
	"US": "1", "VN": "84", "ZA": "27",
}

// DialCode returns the international calling code for country without the
// leading plus, or "" when the country is unknown.
func DialCode(country string) string {
	return dialCodes[strings.ToUpper(country)]
}
