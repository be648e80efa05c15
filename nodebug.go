// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

//go:build !debug

package cbdd

const _DEBUG bool = false
const _LOGLEVEL int = 0

func (b *BDD) logTable() {}
