/*
Package blas provides the sparse BLAS routines this package's dense-vector
multiply is built on (see http://www.netlib.org/blas/blast-forum/chapter3.pdf).

This is a portable-only subset: the assembly-accelerated amd64 path and the
triangular-solve and level-1/level-3 routines that no caller in this module
exercises were left behind (see the repository's design notes).
*/
package blas
