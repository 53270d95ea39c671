package faqs

import "errors"

// ErrFAQNotFound indicates the requested FAQ doesn't exist
var ErrFAQNotFound = errors.New("faq not found")
