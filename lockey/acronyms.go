package lockey

import "strings"

// acronyms maps the uppercase form of recognized acronyms to their canonical
// rendering. Title-casing consults this table so that "URL" does not become
// "Url" and "iOS" keeps its conventional capitalization.
var acronyms = map[string]string{
	"URL": "URL", "URI": "URI", "HTML": "HTML", "XML": "XML", "JSON": "JSON",
	"API": "API", "UI": "UI", "ID": "ID", "PDF": "PDF", "CSS": "CSS",
	"HTTP": "HTTP", "HTTPS": "HTTPS", "FTP": "FTP", "SSH": "SSH", "DNS": "DNS",
	"IP": "IP", "TCP": "TCP", "UDP": "UDP", "SQL": "SQL", "SMS": "SMS",
	"MMS": "MMS", "GPS": "GPS", "USB": "USB", "CPU": "CPU", "GPU": "GPU",
	"RAM": "RAM", "ROM": "ROM", "OS": "OS", "IOS": "iOS", "MACOS": "macOS",
	"UTC": "UTC", "GMT": "GMT", "RGB": "RGB", "RGBA": "RGBA", "AVI": "AVI",
	"MP3": "MP3", "MP4": "MP4", "PNG": "PNG", "JPG": "JPG", "JPEG": "JPEG",
	"GIF": "GIF", "SVG": "SVG", "CSV": "CSV", "TSV": "TSV", "ZIP": "ZIP",
	"TAR": "TAR", "GZ": "GZ", "WWW": "WWW", "VPN": "VPN", "LAN": "LAN",
	"WAN": "WAN", "WIFI": "WiFi", "NFC": "NFC", "RFID": "RFID", "OCR": "OCR",
	"AI": "AI", "ML": "ML", "AR": "AR", "VR": "VR", "XR": "XR",
}

// renderWord returns the canonical acronym rendering when word is a known
// acronym, and plain Title case (first rune upper, rest lower) otherwise.
func renderWord(word string) string {
	if canonical, ok := acronyms[strings.ToUpper(word)]; ok {
		return canonical
	}

	return capitalize(word)
}

// capitalize upper-cases the first byte and lower-cases the remainder, the
// way display labels are conventionally cased.
func capitalize(word string) string {
	if word == "" {
		return word
	}

	return strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
}
