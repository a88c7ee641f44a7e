// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

/*
Package reach implements the four reachability strategies of spec.md §4
— BFS, PAR, SAT, and CHAINING — together with the relation preprocessing
(§4.2), the parallel union/successor kernel they share (§4.3), and
saturation's operation-cache memoization (§4.7).

Every strategy consumes a *model.Model loaded by internal/model and
drives it purely through internal/tbdd's exported operations, exactly as
spec.md §6.3 describes the TBDD package as an external black box: this
package never reaches into internal/tbdd's unexported fields.
*/
package reach
