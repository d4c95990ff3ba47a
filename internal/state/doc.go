// Package state — модель текущего состояния игры и правила слияния частичных
// обновлений.
//
// State хранит всё, что бот может показать в чате; Partial — то же самое, но
// каждое поле опционально. Слияние (State.Merge) выставляет присутствующие
// поля и не трогает остальные; побеждает последний писатель. Store — общий
// потокобезопасный владелец записи, через него работают источники данных и бот.
//
// Производные представления (Beatmap, Link, PP, ModList) вычисляются при чтении
// и нигде не хранятся.
package state
