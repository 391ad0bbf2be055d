/*
Package persistent is the home of immutable persistent data structures.

Persistent data structures can be copied and modified efficiently, leaving the
original unchanged. Copies share most of their memory with the original, which
makes "modifying" a value a matter of copying a logarithmic number of small nodes.
Values of these types may be shared between goroutines without any locking.

Currently there is one data structure, in sub-package vector: a sequence with
effectively constant-time indexed access, update, append and pop-last.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package persistent
