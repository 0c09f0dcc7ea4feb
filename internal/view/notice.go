package view

// Notice codes carried in the ?notice= query parameter after a form post.
const (
	NoticeRegistered     = "registered"
	NoticeWelcomeBack    = "welcome"
	NoticeLoggedOut      = "logged-out"
	NoticeLoginRequired  = "login-required"
	NoticeProfileSaved   = "profile-saved"
	NoticeCVUploaded     = "cv-uploaded"
	NoticeSubscribed     = "subscribed"
	NoticeJobPosted      = "job-posted"
	NoticeApplied        = "applied"
	NoticePaidRequired   = "paid-required"
	NoticeAlreadyApplied = "already-applied"
	NoticeJobNotFound    = "job-not-found"
	NoticeInvalidInput   = "invalid"
	NoticeError          = "error"
)

var noticeMessages = map[string]string{
	NoticeRegistered:     "New user registered!",
	NoticeWelcomeBack:    "Welcome back!",
	NoticeLoggedOut:      "You have been logged out.",
	NoticeLoginRequired:  "Please log in first.",
	NoticeProfileSaved:   "Profile saved!",
	NoticeCVUploaded:     "CV uploaded successfully!",
	NoticeSubscribed:     "Payment successful! You are now a paid subscriber.",
	NoticeJobPosted:      "Job posted successfully!",
	NoticeApplied:        "Application submitted successfully!",
	NoticePaidRequired:   "You must be a paid subscriber to apply for jobs.",
	NoticeAlreadyApplied: "You have already applied for this job.",
	NoticeJobNotFound:    "That job is no longer available.",
	NoticeInvalidInput:   "Please check the form and try again.",
	NoticeError:          "Something went wrong. Please try again.",
}

// NoticeMessage returns the message for a notice code, or "" when the code
// is unknown.
func NoticeMessage(code string) string {
	return noticeMessages[code]
}
