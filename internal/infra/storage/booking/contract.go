package booking

import "github.com/Daniil2209/Cleandins/pkg/txmanager"

// DBExecutor интерфейс для работы с БД (поддерживает *sql.DB и *sql.Tx)
type DBExecutor = txmanager.Executor
