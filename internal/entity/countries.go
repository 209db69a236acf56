package entity

var australiaCountries = map[string]string{
	"AU": "Australia",
	"NZ": "New Zealand",
}

var canadaCountries = map[string]string{
	"CA": "Canada",
}

var europeCountries = map[string]string{
	"AF": "Afghanistan",
	"AL": "Albania",
	"DZ": "Algeria",
	"AO": "Angola",
	"AM": "Armenia",
	"AT": "Austria",
	"AZ": "Azerbaijan",
	"BH": "Bahrain",
	"BY": "Belarus",
	"BE": "Belgium",
	"BJ": "Benin",
	"BT": "Bhutan",
	"BA": "Bosnia and Herzegovina",
	"BW": "Botswana",
	"BN": "Brunei",
	"BG": "Bulgaria",
	"BF": "Burkina-Faso",
	"KH": "Cambodia",
	"CM": "Cameroon",
	"CV": "Cape Verde",
	"TD": "Chad",
	"CN": "China",
	"CD": "Democratic Republic of Congo",
	"CG": "Republic of Congo",
	"CI": "Cote d’Ivoire",
	"HR": "Croatia",
	"CY": "Cyprus",
	"CZ": "Czech Republic",
	"DK": "Denmark",
	"EG": "Egypt",
	"EE": "Estonia",
	"FJ": "Fiji",
	"FI": "Finland",
	"FR": "France",
	"GA": "Gabon",
	"GM": "Gambia",
	"GE": "Georgia",
	"DE": "Germany",
	"GH": "Ghana",
	"GR": "Greece",
	"GW": "Guinea-Bissau",
	"HK": "Hong Kong",
	"HU": "Hungary",
	"IS": "Iceland",
	"IN": "India",
	"ID": "Indonesia",
	"IQ": "Iraq",
	"IE": "Ireland",
	"IL": "Israel",
	"IT": "Italy",
	"JO": "Jordan",
	"KZ": "Kazakhstan",
	"KE": "Kenya",
	"KR": "Korea",
	"XK": "Kosovo",
	"KW": "Kuwait",
	"KG": "Kyrgyzstan",
	"LA": "Laos",
	"LV": "Latvia",
	"LB": "Lebanon",
	"LR": "Liberia",
	"LY": "Libya",
	"LT": "Lithuania",
	"LU": "Luxembourg",
	"MO": "Macao",
	"MK": "Macedonia",
	"MG": "Madagascar",
	"MW": "Malawi",
	"MY": "Malaysia",
	"MV": "Maldives",
	"ML": "Mali",
	"MT": "Republic of Malta",
	"MR": "Mauritania",
	"MU": "Mauritius",
	"FM": "Federal States of Micronesia",
	"MD": "Moldova",
	"MN": "Mongolia",
	"ME": "Montenegro",
	"MA": "Morocco",
	"MZ": "Mozambique",
	"MM": "Myanmar",
	"NA": "Namibia",
	"NR": "Nauru",
	"NP": "Nepal",
	"NL": "Netherlands",
	"NE": "Niger",
	"NG": "Nigeria",
	"NO": "Norway",
	"OM": "Oman",
	"PK": "Pakistan",
	"PW": "Palau",
	"PG": "Papua New Guinea",
	"PH": "Philippines",
	"PL": "Poland",
	"PT": "Portugal",
	"QA": "Qatar",
	"RO": "Romania",
	"RU": "Russia",
	"RW": "Rwanda",
	"ST": "Sao Tome e Principe",
	"SA": "Saudi Arabia",
	"SN": "Senegal",
	"RS": "Serbia",
	"SC": "Seychelles",
	"SL": "Sierra Leone",
	"SG": "Singapore",
	"SK": "Slovakia",
	"SI": "Slovenia",
	"SB": "Solomon Islands",
	"ZA": "South Africa",
	"ES": "Spain",
	"LK": "Sri Lanka",
	"SZ": "Swaziland",
	"SE": "Sweden",
	"CH": "Switzerland",
	"TW": "Taiwan",
	"TJ": "Tajikistan",
	"TZ": "Tanzania",
	"TH": "Thailand",
	"TO": "Tonga",
	"TN": "Tunisia",
	"TR": "Türkiye",
	"TM": "Turkmenistan",
	"AE": "United Arab Emirates",
	"UG": "Uganda",
	"UA": "Ukraine",
	"GB": "United Kingdom",
	"UZ": "Uzbekistan",
	"VU": "Vanuatu",
	"VN": "Vietnam",
	"YE": "Yemen",
	"ZM": "Zambia",
	"ZW": "Zimbabwe",
}

var japanCountries = map[string]string{
	"JP": "Japan",
}

var latamCountries = map[string]string{
	"AI": "Anguilla",
	"AG": "Antigua & Barbuda",
	"AR": "Argentinia",
	"BS": "Bahamas",
	"BB": "Barbados",
	"BZ": "Belize",
	"BM": "Bermuda",
	"BO": "Bolivia",
	"BR": "Brazil",
	"VG": "British Virgin Islands",
	"KY": "Cayman Islands",
	"CL": "Chile",
	"CO": "Colombia",
	"CR": "Costa Rica",
	"DM": "Dominica",
	"DO": "Dominican Republic",
	"EC": "Ecuador",
	"SV": "El Salvador",
	"GD": "Grenada",
	"GY": "Guyana",
	"GT": "Guatemala",
	"HN": "Honduras",
	"JM": "Jamaica",
	"MX": "Mexico",
	"MS": "Montserrat",
	"NI": "Nicaragua",
	"PA": "Panama",
	"PY": "Paraguay",
	"PE": "Peru",
	"KN": "St. Kitts & Nevis",
	"LC": "St. Lucia",
	"VC": "St. Vincent & The Grenadines",
	"SR": "Suriname",
	"TT": "Trinidad & Tobago",
	"TC": "Turks & Caicos",
	"UY": "Uruguay",
	"VE": "Venezuela",
}

var usCountries = map[string]string{
	"US": "United States",
}

const australiaAddress = `Apple Pty Limited
Level 3
20 Martin Place
Sydney South 2000
Australia`

const canadaAddress = `Apple Canada Inc.
120 Bremner Boulevard, Suite 1600
Toronto, ON M5J 0A8
Canada`

const europeAddress = `Apple Distribution International
Internet Software & Services
Hollyhill Industrial Estate
Hollyhill, Cork
Republic of Ireland
VAT ID: ` + VATIDEurope

const japanAddress = `iTunes K.K.
〒 106-6140
6-10-1 Roppongi, Minato-ku, Tokyo
Japan`

const latamAddress = `Apple Services LATAM LLC
1 Alhambra Plaza
Suite 700
Coral Gables, FL 33134
U.S.A.`

const usAddress = `Apple Inc.
1 Apple Park Way
Cupertino, CA 95014
U.S.A.`
