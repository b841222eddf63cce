// Package lib acts as a library for modules that do not fit
// strictly into other layers.
//
// It currently holds the email client (Resend) used to notify the site
// owner about contact form submissions.
package lib
