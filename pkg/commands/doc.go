// Package commands maps the xfiles command surface onto selection store
// operations.
//
// The first argument selects the command:
//
//	(none)   show, or replace with piped lines when stdin is piped
//	+        add arguments, or piped lines when stdin is piped
//	-        remove arguments, or piped lines when stdin is piped
//	++       print the backing store location
//	--       clear the selection
//	other    replace the selection with all arguments
//
// Every command except ++ and -- prints the resulting selection, one path
// per line. Piped lines are always items, even when they look like command
// tokens.
package commands
