// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

/*
Package cbdd defines a concrete type for Binary Decision Diagrams (BDD) with
complemented edges, a data structure used to efficiently represent Boolean
functions or, equivalently, sets of Boolean vectors.

# Basics

Variables are strictly positive integers and the variable ordering is the
natural order on integers: a node always tests a variable smaller than the
variables of its children. There is no need to declare the number of variables
in advance.

Every operation over a BDD returns a Ref, that is a signed integer. The
absolute value of a Ref is the index of a node in the node table and its sign
encodes negation (a complemented edge). Hence negation is free and a function
and its negation share all their nodes. There is a single terminal node, at
index 1, so that One == 1 and Zero == -1. We also enforce that the high branch
of a node is never complemented, which makes the representation canonical: two
Refs are equal if and only if they denote the same function.

# Memory management

A BDD is created with a fixed capacity, given as the number of cells in the
node table, and never grows. Nodes are not reference counted. Instead you
decide when to call CollectGarbage, giving the list of Refs (the roots) that
you still need; every node that cannot be reached from the roots is reclaimed.
Operations panic with ErrCapacity when the table is full.

# Errors

Calling an operation with an invalid argument (a variable that is not strictly
positive, the zero Ref, a Ref to a collected node) is a programming error and
the library panics with a wrapped error. You can test the cause of a panic with
errors.Is and one of the sentinel values, such as ErrRef or ErrCapacity.

# Use of build tags

To get access to logging of some operations, in particular the creation of
nodes and the content of the node table after a collection, you can compile
your executable with the build tag `debug`. Garbage collections are always
logged at the debug level, in section "bdd".
*/
package cbdd
