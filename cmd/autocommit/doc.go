// Autocommit generates commit messages for staged changes.
//
// Small diffs are classified offline by deterministic path and keyword
// heuristics; large diffs are routed to an LLM provider. Generated messages
// are cached by diff fingerprint so repeated invocations on the same staged
// state are instant.
//
// Usage:
//
//	autocommit suggest                # print a suggested message
//	autocommit suggest --style short  # pick a message style
//	autocommit commit                 # stage, suggest, confirm, commit
//	autocommit config show            # inspect effective configuration
//	autocommit cache show             # inspect the message cache
package main
