// Package feature implements local binary pattern (LBP) texture features
// and their spatially enhanced histogram representation, the classic input
// to appearance-based face recognition pipelines.
//
// Reference: Ahonen T., Hadid A. and Pietikäinen M. "Face description with
// local binary patterns: Application to face recognition." IEEE PAMI,
// 28(12):2037-2041.
package feature
