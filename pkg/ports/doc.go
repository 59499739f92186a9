/*
Package ports defines the driven-side interfaces of the engine, following a
hexagonal layout: the core never knows which storage backend holds a named
machine, only that something satisfies MachineStore.

The package also ships a reusable contract test, RunMachineStoreContract, so
every adapter proves the same behavior.
*/
package ports
