/*
Package observability exposes prometheus instrumentation for hosts that run
the engine behind a server. The engine itself stays unmeasured; hosts record
what crossed their boundary.
*/
package observability
