package domain

// Original wire formats a raw log record can arrive in.
const (
	FormatJSON      = "JSON"
	FormatXML       = "XML"
	FormatCSV       = "CSV"
	FormatApache    = "APACHE"
	FormatNginx     = "NGINX"
	FormatSyslog    = "SYSLOG"
	FormatPlainText = "PLAIN_TEXT"
)
