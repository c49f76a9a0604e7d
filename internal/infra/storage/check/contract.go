package check

import "github.com/stevenluongo/bna-wellness/pkg/txmanager"

// Переиспользуем интерфейс исполнителя из txmanager для работы с БД
type DBExecutor = txmanager.DBExecutor
