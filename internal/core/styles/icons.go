package styles

// Tip: To find icons use https://github.com/loichyan/nerdfix

var (
	IconNotifySuccess = "" //
	IconNotifyError   = "" //
	IconNotifyWarning = "" //
	IconNotifyInfo    = "" //
	IconSticky        = "" //
	IconAction        = "" //
)
