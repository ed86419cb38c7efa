// Package notifier posts champion-odds digests to notification platforms.
//
// The Twitter notifier handles OAuth authentication, message formatting,
// and the 280-character limit; the dry-run notifier prints what would be
// posted for local inspection.
package notifier
